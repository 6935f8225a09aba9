package domain

import "fmt"

// UnitStandard is the smallest credit-bearing curriculum item.
type UnitStandard struct {
	ID      string
	Title   string
	Credits int
}

// Module groups unit standards. Credits must equal the sum of its unit
// standards' credits.
type Module struct {
	Code          string
	Name          string
	Credits       int
	UnitStandards []UnitStandard
}

// Curriculum is the read-only qualification structure a rollout plan is
// computed from.
type Curriculum struct {
	ID                   string
	Name                 string
	QualificationCredits int
	RequiredCredits      int
	Modules              []Module
}

// Validate checks the structural invariants the rollout calculator relies on.
// It returns the first violation as a *ValidationError.
func (c *Curriculum) Validate() error {
	if c == nil || len(c.Modules) == 0 {
		return NewValidationError("modules", "curriculum must contain at least one module")
	}
	seen := make(map[string]string)
	for i, m := range c.Modules {
		field := fmt.Sprintf("modules[%d]", i)
		if len(m.UnitStandards) == 0 {
			return NewValidationError(field+".unit_standards", fmt.Sprintf("module %q has no unit standards", m.Name))
		}
		sum := 0
		for j, us := range m.UnitStandards {
			usField := fmt.Sprintf("%s.unit_standards[%d]", field, j)
			if us.ID == "" {
				return NewValidationError(usField+".id", "unit standard id is required")
			}
			if us.Credits <= 0 {
				return NewValidationError(usField+".credits", fmt.Sprintf("unit standard %s must carry positive credits, got %d", us.ID, us.Credits))
			}
			if prev, dup := seen[us.ID]; dup {
				return NewValidationError(usField+".id", fmt.Sprintf("unit standard %s already listed at %s", us.ID, prev))
			}
			seen[us.ID] = usField
			sum += us.Credits
		}
		if m.Credits != sum {
			return NewValidationError(field+".credits", fmt.Sprintf("module %q declares %d credits but its unit standards sum to %d", m.Name, m.Credits, sum))
		}
	}
	if c.RequiredCredits < 0 || (c.QualificationCredits > 0 && c.RequiredCredits > c.QualificationCredits) {
		return NewValidationError("required_credits", fmt.Sprintf("required credits %d outside [0, %d]", c.RequiredCredits, c.QualificationCredits))
	}
	return nil
}

// TotalCredits sums the credits of every module.
func (c *Curriculum) TotalCredits() int {
	total := 0
	for _, m := range c.Modules {
		total += m.Credits
	}
	return total
}

// CreditCap is the ceiling applied to earned credits: the required credits
// when declared, otherwise the total curriculum credits.
func (c *Curriculum) CreditCap() int {
	if c.RequiredCredits > 0 {
		return c.RequiredCredits
	}
	return c.TotalCredits()
}

// UnitCredits indexes unit standard credits by ID.
func (c *Curriculum) UnitCredits() map[string]int {
	out := make(map[string]int)
	for _, m := range c.Modules {
		for _, us := range m.UnitStandards {
			out[us.ID] = us.Credits
		}
	}
	return out
}
