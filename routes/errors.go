/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errRequestBodyInvalid = errors.New("invalid request body")
	errSubmitEmpty        = errors.New("nothing to convert")
)
