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

package crate_hdl

import (
	"fmt"
	"github.com/SENERGY-Platform/crate-source-manager/lib/model"
	"github.com/SENERGY-Platform/crate-source-manager/util"
	"github.com/SENERGY-Platform/crate-source-manager/util/dir_fs"
)

func (h *Handler) copyLocal(crate model.Crate, dstPath string) error {
	srcPath := util.NormalizePath(crate.Path)
	dstPath = util.NormalizePath(dstPath)
	src, err := dir_fs.New(srcPath)
	if err != nil {
		return model.NewInternalError(err)
	}
	util.Logger.Infof("copying local crate from %s to %s", srcPath, dstPath)
	if err = dir_fs.Copy(src, dstPath, dir_fs.CopyOptions{SkipRootDirs: []string{"target"}}); err != nil {
		return model.NewInternalError(fmt.Errorf("unable to copy %s: %s", crate, err))
	}
	return nil
}
