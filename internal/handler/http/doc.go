// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the development server.
//
// It exposes route wiring, request handlers and middleware. Request ids,
// access logging, response compression and bearer authentication are handled
// here before requests are delegated to the service layer. Every error
// response is a JSON object with a "message" field.
package http
