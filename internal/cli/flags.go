package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/spf13/pflag"
)

// enumValue is a pflag.Value restricted to a fixed set of string values.
type enumValue[T ~string] struct {
	target   *T
	allowed  []T
	typeName string
}

var _ pflag.Value = (*enumValue[domain.Category])(nil)

func newEnumValue[T ~string](target *T, typeName string, allowed []T) *enumValue[T] {
	return &enumValue[T]{target: target, allowed: allowed, typeName: typeName}
}

func (e *enumValue[T]) String() string {
	if e.target == nil {
		return ""
	}
	return string(*e.target)
}

func (e *enumValue[T]) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, v := range e.allowed {
		if string(v) == s {
			*e.target = v
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", e.choices())
}

func (e *enumValue[T]) Type() string { return e.typeName }

func (e *enumValue[T]) choices() string {
	names := make([]string, len(e.allowed))
	for i, v := range e.allowed {
		names[i] = string(v)
	}
	return strings.Join(names, "|")
}

func categoryFlag(fs *pflag.FlagSet, target *domain.Category, name, usage string) {
	fs.Var(newEnumValue(target, "category", domain.Categories), name, usage)
}

func statusFlag(fs *pflag.FlagSet, target *domain.ActivityStatus, name, usage string) {
	fs.Var(newEnumValue(target, "status", domain.ActivityStatuses), name, usage)
}

func crowdFlag(fs *pflag.FlagSet, target *domain.CrowdLevel, name, usage string) {
	fs.Var(newEnumValue(target, "crowd", domain.CrowdLevels), name, usage)
}

func activityTypeFlag(fs *pflag.FlagSet, target *string, name, usage string) {
	fs.Var(newEnumValue(target, "type", domain.ActivityTypes), name, usage)
}

type exportFormat string

const (
	formatJSON exportFormat = "json"
	formatPDF  exportFormat = "pdf"
)

func parseDate(flag, s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q: use YYYY-MM-DD", flag, s)
	}
	return t, nil
}

// parseBudgetPairs converts category=amount flag pairs into a budget.
func parseBudgetPairs(pairs map[string]string) (domain.Budget, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	b := make(domain.Budget, len(pairs))
	for k, v := range pairs {
		amount, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid budget amount for %s: %q", k, v)
		}
		b[domain.Category(strings.ToLower(strings.TrimSpace(k)))] = amount
	}
	return b, nil
}
