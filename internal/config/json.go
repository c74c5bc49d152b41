// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names and
// duration strings ("24h", "30s") for the optional config file.
type StructuredJSONConfig struct {
	App struct {
		CheckinBaseURL string `json:"checkin_base_url"`
		Version        string `json:"version"`
	} `json:"app,omitempty"`

	Crypto struct {
		EncryptionKey  string `json:"encryption_key"`
		EncryptionSalt string `json:"encryption_salt"`
	} `json:"crypto,omitempty"`

	Alloggiati struct {
		User         string            `json:"user"`
		Token        string            `json:"token"`
		WsKey        string            `json:"wskey"`
		Endpoint     string            `json:"endpoint"`
		TestMode     bool              `json:"test_mode"`
		ApartmentMap map[string]string `json:"apartment_mapping"`
	} `json:"alloggiati,omitempty"`

	Auth struct {
		TokenSignKey      string   `json:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer"`
		TokenDuration     Duration `json:"token_duration"`
		AdminLogin        string   `json:"admin_login"`
		AdminPasswordHash string   `json:"admin_password_hash"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		PurgeInterval Duration `json:"purge_interval"`
		PurgeTimeout  Duration `json:"purge_timeout"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			CheckinBaseURL: jsonCfg.App.CheckinBaseURL,
			Version:        jsonCfg.App.Version,
		},
		Crypto: Crypto{
			EncryptionKey:  jsonCfg.Crypto.EncryptionKey,
			EncryptionSalt: jsonCfg.Crypto.EncryptionSalt,
		},
		Alloggiati: Alloggiati{
			User:         jsonCfg.Alloggiati.User,
			Token:        jsonCfg.Alloggiati.Token,
			WsKey:        jsonCfg.Alloggiati.WsKey,
			Endpoint:     jsonCfg.Alloggiati.Endpoint,
			TestMode:     jsonCfg.Alloggiati.TestMode,
			ApartmentMap: jsonCfg.Alloggiati.ApartmentMap,
		},
		Auth: Auth{
			TokenSignKey:      jsonCfg.Auth.TokenSignKey,
			TokenIssuer:       jsonCfg.Auth.TokenIssuer,
			TokenDuration:     time.Duration(jsonCfg.Auth.TokenDuration),
			AdminLogin:        jsonCfg.Auth.AdminLogin,
			AdminPasswordHash: jsonCfg.Auth.AdminPasswordHash,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			PurgeInterval: time.Duration(jsonCfg.Workers.PurgeInterval),
			PurgeTimeout:  time.Duration(jsonCfg.Workers.PurgeTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
