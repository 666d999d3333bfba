package query

import "fmt"

// Condition represents a WHERE clause condition.
// SQL returns the fragment and its parameters, named @p<paramIndex>, @p<paramIndex+1>...
type Condition interface {
	SQL(paramIndex int) (string, map[string]interface{})
}

// comparison implements a binary comparison against one bound parameter.
type comparison struct {
	field    string
	operator string
	value    interface{}
}

func (c *comparison) SQL(paramIndex int) (string, map[string]interface{}) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s %s @%s", c.field, c.operator, name), map[string]interface{}{name: c.value}
}

// Eq creates an equality condition, e.g. Eq("organization_id", id) -> "organization_id = @p0".
func Eq(field string, value interface{}) Condition {
	return &comparison{field: field, operator: "=", value: value}
}

// Lt creates a strict less-than condition.
func Lt(field string, value interface{}) Condition {
	return &comparison{field: field, operator: "<", value: value}
}

// Gte creates a greater-or-equal condition.
func Gte(field string, value interface{}) Condition {
	return &comparison{field: field, operator: ">=", value: value}
}

// In creates an IN UNNEST condition over an array parameter.
func In(field string, values interface{}) Condition {
	return &inCondition{field: field, values: values}
}

type inCondition struct {
	field  string
	values interface{}
}

func (c *inCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s IN UNNEST(@%s)", c.field, name), map[string]interface{}{name: c.values}
}

// IsNull creates an IS NULL condition.
func IsNull(field string) Condition {
	return &nullCondition{field: field}
}

// IsNotNull creates an IS NOT NULL condition.
func IsNotNull(field string) Condition {
	return &nullCondition{field: field, negate: true}
}

type nullCondition struct {
	field  string
	negate bool
}

func (c *nullCondition) SQL(int) (string, map[string]interface{}) {
	if c.negate {
		return c.field + " IS NOT NULL", map[string]interface{}{}
	}
	return c.field + " IS NULL", map[string]interface{}{}
}
