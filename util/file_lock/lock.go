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
	"os"
	"syscall"
)

// WithLock runs f while holding an exclusive advisory lock on the file at
// path, creating it if necessary. If the lock is held by another process a
// single notice naming msg is logged before blocking, acquisition itself
// never times out. The lock is released on every exit path, a panic inside f
// propagates after the release.
func WithLock(path string, msg string, f func() error) error {
	file, err := acquire(path, msg)
	if err != nil {
		return err
	}
	defer release(file)
	return f()
}

func acquire(path string, msg string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	err = syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
	if err != nil {
		if !errors.Is(err, syscall.EWOULDBLOCK) {
			file.Close()
			return nil, err
		}
		util.Logger.Warningf("blocking on other processes finishing to %s", msg)
		if err = syscall.Flock(int(file.Fd()), syscall.LOCK_EX); err != nil {
			file.Close()
			return nil, err
		}
	}
	return file, nil
}

func release(file *os.File) {
	_ = syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
	_ = file.Close()
}
