/*
 * Copyright 2024 InfAI (CC SES)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package model

import (
	"errors"
	"fmt"
)

type CrateType = string

// Crate identifies a unit of source code to prepare for a sandboxed build.
// Exactly one variant is populated, selected by Type: registry crates carry
// Name and Version, git crates carry URL, local crates carry Path. A Crate is
// never mutated, all state changes happen to the cache it governs.
type Crate struct {
	Type    CrateType `json:"type"`
	Name    string    `json:"name,omitempty"`
	Version string    `json:"version,omitempty"`
	URL     string    `json:"url,omitempty"`
	Path    string    `json:"path,omitempty"`
}

func (c Crate) Validate() error {
	switch c.Type {
	case CrateTypeRegistry:
		if c.Name == "" || c.Version == "" {
			return errors.New("registry crate requires name and version")
		}
		if c.URL != "" || c.Path != "" {
			return errors.New("registry crate must not set url or path")
		}
	case CrateTypeGit:
		if c.URL == "" {
			return errors.New("git crate requires url")
		}
		if c.Name != "" || c.Version != "" || c.Path != "" {
			return errors.New("git crate must only set url")
		}
	case CrateTypeLocal:
		if c.Path == "" {
			return errors.New("local crate requires path")
		}
		if c.Name != "" || c.Version != "" || c.URL != "" {
			return errors.New("local crate must only set path")
		}
	default:
		return fmt.Errorf("unknown crate type '%s'", c.Type)
	}
	return nil
}

func (c Crate) String() string {
	switch c.Type {
	case CrateTypeRegistry:
		return fmt.Sprintf("crate %s %s from registry", c.Name, c.Version)
	case CrateTypeGit:
		return fmt.Sprintf("git crate at %s", c.URL)
	case CrateTypeLocal:
		return fmt.Sprintf("local crate at %s", c.Path)
	}
	return fmt.Sprintf("unknown crate type '%s'", c.Type)
}

type CratePrepareRequest struct {
	Crate   Crate  `json:"crate"`
	DstPath string `json:"dst_path"`
}

type CrateCommit struct {
	Commit string `json:"commit"`
}
