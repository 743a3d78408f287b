/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import "errors"

var (
	// ErrUnknownKeys is returned when a config file has keys Config does not know.
	ErrUnknownKeys = errors.New("unknown config keys")
	// ErrInvalidEnv is returned for an unsupported runtime environment.
	ErrInvalidEnv = errors.New("env must be one of: development, dev, production, prod")
	// ErrInvalidBannerDelay is returned for a non-positive banner delay.
	ErrInvalidBannerDelay = errors.New("banner_delay must be positive")
	// ErrInvalidGender is returned for an unknown reference gender.
	ErrInvalidGender = errors.New("gender must be one of: Male, Female, Unisex")
)
