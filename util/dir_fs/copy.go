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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
)

type CopyOptions struct {
	// SkipRootDirs lists directory names that are not copied and not
	// descended into when they appear directly below the source root,
	// e.g. "target" build output or ".git".
	SkipRootDirs []string
}

// Copy replicates the source tree below dst. Symlinks are followed; a link
// that cannot be resolved or that points back into its own traversal path is
// an error naming the offending path. The destination is removed again if the
// copy fails partway.
func Copy(src DirFS, dst string, opt CopyOptions) (err error) {
	srcStat, err := src.Stat(".")
	if err != nil {
		return err
	}
	if err = os.MkdirAll(dst, srcStat.Mode().Perm()); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(dst)
		}
	}()
	seen := make(map[string]struct{})
	srcReal, err := filepath.EvalSymlinks(src.Path())
	if err != nil {
		return err
	}
	seen[srcReal] = struct{}{}
	err = copyAll(src, dst, 0, opt, seen)
	return err
}

func copyAll(src DirFS, dstPath string, depth int, opt CopyOptions, seen map[string]struct{}) error {
	entries, err := fs.ReadDir(src, ".")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		info, err := src.Stat(entry.Name())
		if err != nil {
			return err
		}
		dPath := path.Join(dstPath, entry.Name())
		if info.IsDir() {
			if depth == 0 && slices.Contains(opt.SkipRootDirs, entry.Name()) {
				continue
			}
			real, err := filepath.EvalSymlinks(path.Join(src.Path(), entry.Name()))
			if err != nil {
				return err
			}
			if _, ok := seen[real]; ok {
				return fmt.Errorf("symlink loop at %s", path.Join(src.Path(), entry.Name()))
			}
			seen[real] = struct{}{}
			if err = os.MkdirAll(dPath, info.Mode().Perm()); err != nil {
				return err
			}
			sub, err := src.Sub(entry.Name())
			if err != nil {
				return err
			}
			if err = copyAll(sub, dPath, depth+1, opt, seen); err != nil {
				return err
			}
			delete(seen, real)
		} else if info.Mode().IsRegular() {
			i, err := copyFile(src, entry.Name(), dPath, info.Mode().Perm())
			if err != nil {
				return err
			}
			if i != info.Size() {
				return errors.New("error writing to file")
			}
		}
	}
	return nil
}

func copyFile(src DirFS, name, dstPath string, perm os.FileMode) (int64, error) {
	srcFile, err := src.Open(name)
	if err != nil {
		return 0, err
	}
	defer srcFile.Close()
	dstFile, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return 0, err
	}
	defer dstFile.Close()
	return io.Copy(dstFile, srcFile)
}
