package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

// resolveGroupID resolves a group reference which can be:
//   - the group name (case-insensitive)
//   - a full UUID
//   - a unique UUID prefix
func resolveGroupID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("group is required")
	}
	groups, err := app.Groups.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(groups))
	names := make([]string, len(groups))
	for i, g := range groups {
		ids[i], names[i] = g.ID, g.Name
	}
	return matchID("group", input, ids, names)
}

// resolveStudent finds a learner within a group by name, UUID or UUID prefix.
func resolveStudent(ctx context.Context, app *App, groupID, input string) (*domain.Student, error) {
	if input == "" {
		return nil, fmt.Errorf("student is required")
	}
	students, err := app.Groups.ListStudents(ctx, groupID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(students))
	names := make([]string, len(students))
	for i, s := range students {
		ids[i], names[i] = s.ID, s.Name
	}
	id, err := matchID("student", input, ids, names)
	if err != nil {
		return nil, err
	}
	for _, s := range students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("student not found: %q", input)
}

func matchID(kind, input string, ids, names []string) (string, error) {
	// 1. Exact name match (case-insensitive)
	var byName []string
	for i, n := range names {
		if strings.EqualFold(n, input) {
			byName = append(byName, ids[i])
		}
	}
	if len(byName) == 1 {
		return byName[0], nil
	}
	if len(byName) > 1 {
		return "", fmt.Errorf("%s name %q is ambiguous (%d matches); use the ID", kind, input, len(byName))
	}

	// 2. Exact UUID match
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	// 3. UUID prefix match
	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}
