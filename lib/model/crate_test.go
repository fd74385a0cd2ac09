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

import "testing"

func TestCrate_Validate(t *testing.T) {
	valid := []Crate{
		{Type: CrateTypeRegistry, Name: "test", Version: "0.1.0"},
		{Type: CrateTypeGit, URL: "http://test/repo.git"},
		{Type: CrateTypeLocal, Path: "/tmp/src"},
	}
	for _, c := range valid {
		if err := c.Validate(); err != nil {
			t.Errorf("%s: %s", c, err)
		}
	}
	invalid := []Crate{
		{},
		{Type: "unknown"},
		{Type: CrateTypeRegistry, Name: "test"},
		{Type: CrateTypeRegistry, Version: "0.1.0"},
		{Type: CrateTypeRegistry, Name: "test", Version: "0.1.0", Path: "/tmp/src"},
		{Type: CrateTypeGit},
		{Type: CrateTypeGit, URL: "http://test/repo.git", Name: "test"},
		{Type: CrateTypeLocal},
		{Type: CrateTypeLocal, Path: "/tmp/src", URL: "http://test/repo.git"},
	}
	for _, c := range invalid {
		if err := c.Validate(); err == nil {
			t.Errorf("expected error for %v", c)
		}
	}
}

func TestCrate_String(t *testing.T) {
	c := Crate{Type: CrateTypeRegistry, Name: "test", Version: "0.1.0"}
	if s := c.String(); s != "crate test 0.1.0 from registry" {
		t.Errorf("unexpected string: %s", s)
	}
	c = Crate{Type: CrateTypeGit, URL: "http://test/repo.git"}
	if s := c.String(); s != "git crate at http://test/repo.git" {
		t.Errorf("unexpected string: %s", s)
	}
	c = Crate{Type: CrateTypeLocal, Path: "/tmp/src"}
	if s := c.String(); s != "local crate at /tmp/src" {
		t.Errorf("unexpected string: %s", s)
	}
}
