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

package http_hdl

import (
	"github.com/SENERGY-Platform/crate-source-manager/lib"
	"github.com/SENERGY-Platform/crate-source-manager/lib/model"
	"github.com/gin-gonic/gin"
	"net/http"
)

func postCratePrepareH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		var req model.CratePrepareRequest
		if err := gc.ShouldBindJSON(&req); err != nil {
			_ = gc.Error(model.NewInvalidInputError(err))
			return
		}
		jID, err := a.PrepareCrate(gc.Request.Context(), req)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.String(http.StatusOK, jID)
	}
}

func postCrateFetchH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		var crate model.Crate
		if err := gc.ShouldBindJSON(&crate); err != nil {
			_ = gc.Error(model.NewInvalidInputError(err))
			return
		}
		jID, err := a.FetchCrate(gc.Request.Context(), crate)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.String(http.StatusOK, jID)
	}
}

func postCratePurgeH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		var crate model.Crate
		if err := gc.ShouldBindJSON(&crate); err != nil {
			_ = gc.Error(model.NewInvalidInputError(err))
			return
		}
		jID, err := a.PurgeCrate(gc.Request.Context(), crate)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.String(http.StatusOK, jID)
	}
}

func postCrateCommitH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		var crate model.Crate
		if err := gc.ShouldBindJSON(&crate); err != nil {
			_ = gc.Error(model.NewInvalidInputError(err))
			return
		}
		commit, err := a.GetCrateCommit(gc.Request.Context(), crate)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, commit)
	}
}
