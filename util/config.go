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
	"github.com/SENERGY-Platform/go-service-base/srv-base"
	"github.com/y-du/go-log-level/level"
)

type CrateHandlerConfig struct {
	CacheDirPath string `json:"cache_dir_path" env_var:"CH_CACHE_DIR_PATH"`
}

type ToolHandlerConfig struct {
	CargoHomePath    string `json:"cargo_home_path" env_var:"TH_CARGO_HOME_PATH"`
	RustupHomePath   string `json:"rustup_home_path" env_var:"TH_RUSTUP_HOME_PATH"`
	RustupProfile    string `json:"rustup_profile" env_var:"TH_RUSTUP_PROFILE"`
	Toolchain        string `json:"toolchain" env_var:"TH_TOOLCHAIN"`
	DefsPath         string `json:"defs_path" env_var:"TH_DEFS_PATH"`
	InstallOnStartup bool   `json:"install_on_startup" env_var:"TH_INSTALL_ON_STARTUP"`
}

type HttpClientConfig struct {
	CratesBaseUrl     string `json:"crates_base_url" env_var:"HC_CRATES_BASE_URL"`
	RustupDistBaseUrl string `json:"rustup_dist_base_url" env_var:"HC_RUSTUP_DIST_BASE_URL"`
	Timeout           int64  `json:"timeout" env_var:"HTTP_TIMEOUT"`
}

type JobsConfig struct {
	BufferSize    int   `json:"buffer_size" env_var:"JOBS_BUFFER_SIZE"`
	MaxNumber     int   `json:"max_number" env_var:"JOBS_MAX_NUMBER"`
	CCHInterval   int   `json:"cch_interval" env_var:"JOBS_CCH_INTERVAL"`
	PurgeInterval int64 `json:"purge_interval" env_var:"JOBS_PURGE_INTERVAL"`
	MaxAge        int64 `json:"max_age" env_var:"JOBS_MAX_AGE"`
}

type Config struct {
	ServerPort   uint                  `json:"server_port" env_var:"SERVER_PORT"`
	CrateHandler CrateHandlerConfig    `json:"crate_handler" env_var:"CH_CONFIG"`
	ToolHandler  ToolHandlerConfig     `json:"tool_handler" env_var:"TH_CONFIG"`
	HttpClient   HttpClientConfig      `json:"http_client" env_var:"HTTP_CLIENT_CONFIG"`
	Jobs         JobsConfig            `json:"jobs" env_var:"JOBS_CONFIG"`
	Logger       srv_base.LoggerConfig `json:"logger" env_var:"LOGGER_CONFIG"`
}

func NewConfig(path string) (*Config, error) {
	cfg := Config{
		ServerPort: 80,
		CrateHandler: CrateHandlerConfig{
			CacheDirPath: "/opt/crate-source-manager/cache",
		},
		ToolHandler: ToolHandlerConfig{
			CargoHomePath:    "/opt/crate-source-manager/cargo-home",
			RustupHomePath:   "/opt/crate-source-manager/rustup-home",
			RustupProfile:    "minimal",
			Toolchain:        "stable",
			DefsPath:         "include/tools.yml",
			InstallOnStartup: true,
		},
		HttpClient: HttpClientConfig{
			CratesBaseUrl:     "https://static.crates.io/crates",
			RustupDistBaseUrl: "https://static.rust-lang.org/rustup/dist",
			Timeout:           30000000000,
		},
		Jobs: JobsConfig{
			BufferSize:    50,
			MaxNumber:     10,
			CCHInterval:   500000,
			PurgeInterval: 300000000000,
			MaxAge:        3600000000,
		},
		Logger: srv_base.LoggerConfig{
			Level:        level.Warning,
			Utc:          true,
			Microseconds: true,
			Terminal:     true,
		},
	}
	err := srv_base.LoadConfig(path, &cfg, nil, nil, nil)
	return &cfg, err
}
