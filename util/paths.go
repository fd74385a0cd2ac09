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

package util

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Windows path limit minus the 12 bytes reserved when creating directories,
// so files can still be created inside the normalized path.
const maxWinPathLen = 260 - 12

// NormalizePath resolves a path to its canonical absolute form. If resolution
// fails, for example because the path does not exist yet, the input is
// returned unchanged. On Windows the extended-length prefix produced by
// canonicalization is stripped again since external tools such as the
// toolchain installer reject it.
func NormalizePath(path string) string {
	p := path
	if abs, err := filepath.Abs(p); err == nil {
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			p = resolved
		}
	}
	if runtime.GOOS == "windows" {
		p = stripVerbatimPrefix(p)
		if len(p) >= maxWinPathLen {
			Logger.Warningf("normalized path is too long for windows: %s", p)
		}
	}
	return p
}

func stripVerbatimPrefix(path string) string {
	if !strings.HasPrefix(path, `\\?\`) {
		return path
	}
	// verbatim UNC paths keep their prefix, rewriting them changes the
	// meaning of the server component
	if strings.HasPrefix(path, `\\?\UNC\`) {
		return path
	}
	return path[len(`\\?\`):]
}
