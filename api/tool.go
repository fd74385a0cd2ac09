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

package api

import (
	"context"
	"github.com/SENERGY-Platform/crate-source-manager/lib/model"
)

func (a *Api) GetTools(_ context.Context) ([]model.ToolInfo, error) {
	return a.toolHandler.List(), nil
}

func (a *Api) InstallTools(_ context.Context) (string, error) {
	return a.jobHandler.Create("install tools", func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		err := a.toolHandler.InstallAll(ctx)
		if err == nil {
			err = ctx.Err()
		}
		return err
	})
}
