package curriculum

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

type templateFile struct {
	ID    string     `yaml:"id" validate:"required"`
	Name  string     `yaml:"name" validate:"required"`
	Slots []slotFile `yaml:"slots" validate:"required,min=1,dive"`
}

type slotFile struct {
	Weekday   string `yaml:"weekday" validate:"required,weekday"`
	StartTime string `yaml:"start_time" validate:"required,clock"`
	EndTime   string `yaml:"end_time" validate:"required,clock"`
	Venue     string `yaml:"venue" validate:"required"`
	Activity  string `yaml:"activity" validate:"omitempty,oneof=lecture practical workplace assessment"`
}

// ParseTemplate decodes a weekly schedule template:
//
//	id: standard-week
//	name: Standard week
//	slots:
//	  - weekday: monday
//	    start_time: "09:00"
//	    end_time: "12:00"
//	    venue: Lecture Room
//	    activity: lecture
func ParseTemplate(data []byte) (*domain.ScheduleTemplate, error) {
	var f templateFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding template: %w", err)
	}
	if err := validateFile(&f); err != nil {
		return nil, err
	}

	tpl := &domain.ScheduleTemplate{
		ID:    f.ID,
		Name:  f.Name,
		Slots: make(map[time.Weekday][]domain.TemplateSlot),
	}
	for _, s := range f.Slots {
		wd, err := domain.ParseWeekday(s.Weekday)
		if err != nil {
			return nil, domain.NewValidationError("slots.weekday", err.Error())
		}
		activity := domain.ActivityKind(s.Activity)
		if activity == "" {
			activity = domain.ActivityLecture
		}
		tpl.Slots[wd] = append(tpl.Slots[wd], domain.TemplateSlot{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Venue:     s.Venue,
			Activity:  activity,
		})
	}
	if err := tpl.Validate(); err != nil {
		return nil, err
	}
	return tpl, nil
}

// LoadTemplate reads a schedule template from path.
func LoadTemplate(path string) (*domain.ScheduleTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}
	tpl, err := ParseTemplate(data)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", path, err)
	}
	return tpl, nil
}
