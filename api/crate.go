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
	"fmt"
	"github.com/SENERGY-Platform/crate-source-manager/lib/model"
)

// PrepareCrate fetches the crate source into the cache and copies it to the
// requested destination as one asynchronous job.
func (a *Api) PrepareCrate(_ context.Context, req model.CratePrepareRequest) (string, error) {
	if err := req.Crate.Validate(); err != nil {
		return "", model.NewInvalidInputError(err)
	}
	return a.jobHandler.Create(fmt.Sprintf("prepare %s", req.Crate), func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		err := a.crateHandler.Fetch(ctx, req.Crate)
		if err == nil {
			err = a.crateHandler.CopySourceTo(ctx, req.Crate, req.DstPath)
		}
		if err == nil {
			err = ctx.Err()
		}
		return err
	})
}

func (a *Api) FetchCrate(_ context.Context, crate model.Crate) (string, error) {
	if err := crate.Validate(); err != nil {
		return "", model.NewInvalidInputError(err)
	}
	return a.jobHandler.Create(fmt.Sprintf("fetch %s", crate), func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		err := a.crateHandler.Fetch(ctx, crate)
		if err == nil {
			err = ctx.Err()
		}
		return err
	})
}

func (a *Api) PurgeCrate(_ context.Context, crate model.Crate) (string, error) {
	if err := crate.Validate(); err != nil {
		return "", model.NewInvalidInputError(err)
	}
	return a.jobHandler.Create(fmt.Sprintf("purge %s", crate), func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		err := a.crateHandler.Purge(ctx, crate)
		if err == nil {
			err = ctx.Err()
		}
		return err
	})
}

func (a *Api) GetCrateCommit(ctx context.Context, crate model.Crate) (model.CrateCommit, error) {
	if err := crate.Validate(); err != nil {
		return model.CrateCommit{}, model.NewInvalidInputError(err)
	}
	return model.CrateCommit{Commit: a.crateHandler.GitCommit(ctx, crate)}, nil
}
