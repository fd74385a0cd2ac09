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

package file_lock

import (
	"errors"
	"github.com/SENERGY-Platform/crate-source-manager/util"
	"github.com/SENERGY-Platform/go-service-base/srv-base"
	"github.com/y-du/go-log-level/level"
	"os"
	"path"
	"sync"
	"testing"
)

func TestMain(m *testing.M) {
	_, err := util.InitLogger(srv_base.LoggerConfig{Level: level.Error, Terminal: true})
	if err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func TestWithLock(t *testing.T) {
	lockPath := path.Join(t.TempDir(), "test.lock")
	called := false
	err := WithLock(lockPath, "test", func() error {
		called = true
		return nil
	})
	if err != nil {
		t.Error(err)
	}
	if !called {
		t.Error("function not called")
	}
	if _, err = os.Stat(lockPath); err != nil {
		t.Error("lock file should remain on disk")
	}
}

func TestWithLock_error(t *testing.T) {
	lockPath := path.Join(t.TempDir(), "test.lock")
	testErr := errors.New("test error")
	err := WithLock(lockPath, "test", func() error {
		return testErr
	})
	if !errors.Is(err, testErr) {
		t.Errorf("expected: %s, got: %s", testErr, err)
	}
	// the lock must be free again
	err = WithLock(lockPath, "test", func() error {
		return nil
	})
	if err != nil {
		t.Error(err)
	}
}

func TestWithLock_exclusion(t *testing.T) {
	lockPath := path.Join(t.TempDir(), "test.lock")
	var mu sync.Mutex
	active := 0
	maxActive := 0
	wg := sync.WaitGroup{}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := WithLock(lockPath, "test", func() error {
				mu.Lock()
				active++
				if active > maxActive {
					maxActive = active
				}
				mu.Unlock()
				mu.Lock()
				active--
				mu.Unlock()
				return nil
			})
			if err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	if maxActive != 1 {
		t.Errorf("expected: %d, got: %d", 1, maxActive)
	}
}

func TestWithLock_panic(t *testing.T) {
	lockPath := path.Join(t.TempDir(), "test.lock")
	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		_ = WithLock(lockPath, "test", func() error {
			panic("test panic")
		})
	}()
	// the lock must be released even after a panic
	err := WithLock(lockPath, "test", func() error {
		return nil
	})
	if err != nil {
		t.Error(err)
	}
}
