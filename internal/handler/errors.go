// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNilConfig is returned by NewHandlers when no configuration is given.
// This is treated as a fatal misconfiguration and causes the application to
// fail at startup.
var errNilConfig = errors.New("nil configuration")
