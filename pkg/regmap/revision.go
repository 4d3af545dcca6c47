/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package regmap

import (
	"fmt"
	"strings"
)

type Revision int

const (
	// Legacy firmware: triggers, pulse generation, data processing and DDS ramp
	Legacy Revision = iota
	// Current firmware: pulse generation and data processing only
	Current
)

var revisionNames = map[Revision]string{
	Legacy:  "legacy",
	Current: "current",
}

func (r Revision) String() string {
	if name, ok := revisionNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Revision(%d)", int(r))
}

// ParseRevision ...
func ParseRevision(s string) (Revision, error) {
	for rev, name := range revisionNames {
		if strings.EqualFold(s, name) {
			return rev, nil
		}
	}
	return 0, ErrConfiguration{What: fmt.Sprintf("unknown revision %q, must be one of: legacy, current", s)}
}

// AddrLimit is the highest register offset accepted for the revision
func (r Revision) AddrLimit() uint32 {
	if r == Legacy {
		return 0x7FFFFFFF
	}
	return 0x3FFFFFFF
}

// Map returns the register map of the revision
func (r Revision) Map() (map[FieldAlias]FieldDef, error) {
	switch r {
	case Legacy:
		return LegacyMap, nil
	case Current:
		return CurrentMap, nil
	}
	return nil, ErrConfiguration{What: fmt.Sprintf("no register map for %s", r)}
}
