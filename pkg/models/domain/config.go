package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ReportProfile is a named set of settings overrides
type ReportProfile struct {
	Name     string
	Settings map[string]string
}

func (p ReportProfile) String() string {
	keys := make([]string, 0, len(p.Settings))
	for k := range p.Settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("%s:%s", p.Name, strings.Join(keys, ","))
}
