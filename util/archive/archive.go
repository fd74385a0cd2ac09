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

package archive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
)

// ExtractCrate unpacks a gzip compressed tar stream below targetPath. Crate
// archives wrap all content in a single "<name>-<version>/" directory, the
// first path component of every entry is therefore dropped so the content
// lands directly in targetPath.
func ExtractCrate(rc io.Reader, targetPath string) error {
	gzipReader, err := gzip.NewReader(rc)
	if err != nil {
		return err
	}
	defer gzipReader.Close()
	tarReader := tar.NewReader(gzipReader)
	for {
		tarHeader, err := tarReader.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		name, ok := stripFirstComponent(tarHeader.Name)
		if !ok {
			continue
		}
		if !fs.ValidPath(name) {
			return fmt.Errorf("invalid entry path '%s'", tarHeader.Name)
		}
		entryPath := path.Join(targetPath, name)
		switch tarHeader.Typeflag {
		case tar.TypeDir:
			if err = os.MkdirAll(entryPath, fs.FileMode(tarHeader.Mode)); err != nil {
				return err
			}
		case tar.TypeReg:
			if err = os.MkdirAll(path.Dir(entryPath), 0755); err != nil {
				return err
			}
			if err = writeFile(entryPath, tarHeader.Mode, tarReader); err != nil {
				return err
			}
		default:
			// crate archives hold only files and directories, anything
			// else is not trusted
			return fmt.Errorf("unsupported entry type '%d' for '%s'", tarHeader.Typeflag, tarHeader.Name)
		}
	}
	return nil
}

func stripFirstComponent(name string) (string, bool) {
	name = strings.TrimPrefix(name, "./")
	i := strings.Index(name, "/")
	if i < 0 {
		return "", false
	}
	rest := strings.Trim(name[i+1:], "/")
	if rest == "" {
		return "", false
	}
	return rest, true
}

func writeFile(name string, mode int64, reader *tar.Reader) error {
	file, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fs.FileMode(mode))
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = io.Copy(file, reader)
	if err != nil {
		return err
	}
	return nil
}
