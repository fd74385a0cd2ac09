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

package tool_hdl

import (
	"os"
	"path"
	"testing"
)

func TestRustupTool_IsInstalled(t *testing.T) {
	cargoHome := t.TempDir()
	tool := NewRustupTool(cargoHome, t.TempDir(), "stable", "minimal", "http://test/dist", nil, 0, nil)
	installed, err := tool.IsInstalled()
	if err != nil {
		t.Error(err)
	}
	if installed {
		t.Error("expected not installed")
	}
	binDir := path.Join(cargoHome, "bin")
	if err = os.MkdirAll(binDir, 0755); err != nil {
		t.Fatal(err)
	}
	t.Run("not executable", func(t *testing.T) {
		if err = os.WriteFile(path.Join(binDir, "rustup"+exeSuffix()), []byte("bin"), 0644); err != nil {
			t.Fatal(err)
		}
		installed, err = tool.IsInstalled()
		if err != nil {
			t.Error(err)
		}
		if installed {
			t.Error("expected not installed")
		}
	})
	t.Run("executable", func(t *testing.T) {
		if err = os.Chmod(path.Join(binDir, "rustup"+exeSuffix()), 0755); err != nil {
			t.Fatal(err)
		}
		installed, err = tool.IsInstalled()
		if err != nil {
			t.Error(err)
		}
		if !installed {
			t.Error("expected installed")
		}
	})
}

func TestHostTarget(t *testing.T) {
	target, err := hostTarget()
	if err != nil {
		t.Skipf("no rust target for this platform: %s", err)
	}
	if target == "" {
		t.Error("empty target")
	}
}
