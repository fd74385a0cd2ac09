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
	"context"
	"errors"
	"github.com/SENERGY-Platform/crate-source-manager/handler"
	"github.com/SENERGY-Platform/crate-source-manager/util"
	"github.com/SENERGY-Platform/go-service-base/srv-base"
	"github.com/y-du/go-log-level/level"
	"os"
	"strings"
	"testing"
)

func TestMain(m *testing.M) {
	_, err := util.InitLogger(srv_base.LoggerConfig{Level: level.Error, Terminal: true})
	if err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

type toolMock struct {
	name        string
	installed   bool
	installs    int
	updates     int
	installErr  error
	stayMissing bool
}

func (t *toolMock) Name() string {
	return t.name
}

func (t *toolMock) BinaryPath() string {
	return "/opt/bin/" + t.name
}

func (t *toolMock) IsInstalled() (bool, error) {
	return t.installed, nil
}

func (t *toolMock) Install(_ context.Context) error {
	t.installs++
	if t.installErr != nil {
		return t.installErr
	}
	if !t.stayMissing {
		t.installed = true
	}
	return nil
}

func (t *toolMock) Update(_ context.Context) error {
	t.updates++
	return nil
}

func TestHandler_InstallAll(t *testing.T) {
	missing := &toolMock{name: "t1"}
	present := &toolMock{name: "t2", installed: true}
	h, err := New([]handler.Tool{missing, present}, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err = h.InstallAll(context.Background()); err != nil {
		t.Error(err)
	}
	if missing.installs != 1 {
		t.Errorf("expected: %d, got: %d", 1, missing.installs)
	}
	if missing.updates != 0 {
		t.Errorf("expected: %d, got: %d", 0, missing.updates)
	}
	if present.installs != 0 {
		t.Errorf("expected: %d, got: %d", 0, present.installs)
	}
	if present.updates != 1 {
		t.Errorf("expected: %d, got: %d", 1, present.updates)
	}
	t.Run("idempotent", func(t *testing.T) {
		if err = h.InstallAll(context.Background()); err != nil {
			t.Error(err)
		}
		if missing.installs != 1 {
			t.Errorf("expected: %d, got: %d", 1, missing.installs)
		}
		if missing.updates != 1 {
			t.Errorf("expected: %d, got: %d", 1, missing.updates)
		}
	})
}

func TestHandler_InstallAll_error(t *testing.T) {
	t.Run("failing install stops the run", func(t *testing.T) {
		failing := &toolMock{name: "t1", installErr: errors.New("test error")}
		next := &toolMock{name: "t2"}
		h, err := New([]handler.Tool{failing, next}, t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		if err = h.InstallAll(context.Background()); err == nil {
			t.Error("expected error")
		}
		if next.installs != 0 {
			t.Errorf("expected: %d, got: %d", 0, next.installs)
		}
	})
	t.Run("still missing after install", func(t *testing.T) {
		broken := &toolMock{name: "t1", stayMissing: true}
		h, err := New([]handler.Tool{broken}, t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		err = h.InstallAll(context.Background())
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "still missing") {
			t.Errorf("unexpected error: %s", err)
		}
	})
	t.Run("relative lock dir", func(t *testing.T) {
		if _, err := New(nil, "relative/path"); err == nil {
			t.Error("expected error")
		}
	})
}

func TestHandler_List(t *testing.T) {
	h, err := New([]handler.Tool{&toolMock{name: "t1", installed: true}, &toolMock{name: "t2"}}, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	tools := h.List()
	if len(tools) != 2 {
		t.Fatalf("expected: %d, got: %d", 2, len(tools))
	}
	if tools[0].Name != "t1" || !tools[0].Installed {
		t.Errorf("unexpected tool info: %v", tools[0])
	}
	if tools[1].Name != "t2" || tools[1].Installed {
		t.Errorf("unexpected tool info: %v", tools[1])
	}
}
