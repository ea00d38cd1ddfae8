// Package permission enumerates the Graph API permission scopes the tool knows about.
package permission

import (
	"encoding/json"
	"fmt"
)

// Permission is an Instagram Graph API permission scope.
type Permission int

const (
	GraphUserMedia Permission = iota + 1
	GraphUserProfile
)

var scopes = map[Permission]string{
	GraphUserMedia:   "instagram_graph_user_media",
	GraphUserProfile: "instagram_graph_user_profile",
}

// All lists the known permissions.
var All = []Permission{GraphUserMedia, GraphUserProfile}

// Parse returns the permission for a scope name.
func Parse(scope string) (Permission, error) {
	for p, s := range scopes {
		if s == scope {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown permission %q", scope)
}

func (p Permission) String() string {
	if s, ok := scopes[p]; ok {
		return s
	}
	return fmt.Sprintf("Permission(%d)", int(p))
}

func (p Permission) MarshalJSON() ([]byte, error) {
	s, ok := scopes[p]
	if !ok {
		return nil, fmt.Errorf("unknown permission %d", int(p))
	}
	return json.Marshal(s)
}

func (p *Permission) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
