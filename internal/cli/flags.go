package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

var (
	_ pflag.Value = (*dateValue)(nil)
	_ pflag.Value = (*optionalDateValue)(nil)
	_ pflag.Value = (*weekdaysValue)(nil)
)

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// dateValue is a required civil date flag.
type dateValue struct{ t *time.Time }

func (v *dateValue) String() string {
	if v.t == nil || v.t.IsZero() {
		return ""
	}
	return v.t.Format(domain.DateLayout)
}

func (v *dateValue) Set(s string) error {
	t, err := parseDate(s)
	if err != nil {
		return err
	}
	*v.t = t
	return nil
}

func (v *dateValue) Type() string { return "date" }

// optionalDateValue leaves its target nil until the flag is given.
type optionalDateValue struct{ t **time.Time }

func (v *optionalDateValue) String() string {
	if v.t == nil || *v.t == nil {
		return ""
	}
	return (*v.t).Format(domain.DateLayout)
}

func (v *optionalDateValue) Set(s string) error {
	t, err := parseDate(s)
	if err != nil {
		return err
	}
	*v.t = &t
	return nil
}

func (v *optionalDateValue) Type() string { return "date" }

// weekdaysValue accepts a comma-separated weekday list such as "mon,wed,fri".
// Repeating the flag appends.
type weekdaysValue struct{ days *[]time.Weekday }

func (v *weekdaysValue) String() string {
	if v.days == nil {
		return ""
	}
	names := make([]string, len(*v.days))
	for i, d := range *v.days {
		names[i] = strings.ToLower(d.String()[:3])
	}
	return strings.Join(names, ",")
}

func (v *weekdaysValue) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		wd, err := domain.ParseWeekday(part)
		if err != nil {
			return err
		}
		*v.days = append(*v.days, wd)
	}
	return nil
}

func (v *weekdaysValue) Type() string { return "weekdays" }

func dateFlag(fs *pflag.FlagSet, target *time.Time, name, usage string) {
	fs.Var(&dateValue{t: target}, name, usage+" (YYYY-MM-DD)")
}

func optionalDateFlag(fs *pflag.FlagSet, target **time.Time, name, usage string) {
	fs.Var(&optionalDateValue{t: target}, name, usage+" (YYYY-MM-DD)")
}
