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

package dir_fs

import (
	"io"
	"os"
	"path"
	"testing"
)

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	d, err := New(tmpDir)
	if err != nil {
		t.Error(err)
	}
	if d.Path() != tmpDir {
		t.Errorf("expected: %s, got: %s", tmpDir, d.Path())
	}
	t.Run("missing path", func(t *testing.T) {
		if _, err = New(path.Join(tmpDir, "missing")); err == nil {
			t.Error("expected error")
		}
	})
}

func TestDirFS_Open(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(path.Join(tmpDir, "f1"), []byte("file 1"), 0644); err != nil {
		t.Fatal(err)
	}
	d := DirFS(tmpDir)
	file, err := d.Open("f1")
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	b, err := io.ReadAll(file)
	if err != nil {
		t.Error(err)
	}
	if string(b) != "file 1" {
		t.Errorf("expected: %s, got: %s", "file 1", string(b))
	}
	t.Run("invalid path", func(t *testing.T) {
		if _, err = d.Open("../f1"); err == nil {
			t.Error("expected error")
		}
	})
}

func TestDirFS_Sub(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(path.Join(tmpDir, "d1"), 0755); err != nil {
		t.Fatal(err)
	}
	d := DirFS(tmpDir)
	sub, err := d.Sub("d1")
	if err != nil {
		t.Error(err)
	}
	if sub.Path() != path.Join(tmpDir, "d1") {
		t.Errorf("expected: %s, got: %s", path.Join(tmpDir, "d1"), sub.Path())
	}
	t.Run("dot", func(t *testing.T) {
		sub, err = d.Sub(".")
		if err != nil {
			t.Error(err)
		}
		if sub != d {
			t.Errorf("expected: %s, got: %s", d, sub)
		}
	})
	t.Run("invalid path", func(t *testing.T) {
		if _, err = d.Sub("../d1"); err == nil {
			t.Error("expected error")
		}
	})
}
