// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires local storage, the state store, the backend adapter, the
// services, background workers, the OAuth callback listener and the
// terminal UI into a single process lifecycle.
package client
