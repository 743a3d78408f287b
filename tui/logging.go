/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package tui

import "github.com/humaidq/clinicalc/logging"

var logger = logging.Logger(logging.SourceTUI)
