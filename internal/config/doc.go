// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates the configuration of the
// equipment keeper client and dev server.
//
// Sources are read in the following order and merged with mergo, so a field
// set by an earlier source wins over the same field of a later one:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG, -c or -config)
//
// [GetClientConfig] and [GetDevServerConfig] apply defaults and return the
// validated view each binary needs.
package config
