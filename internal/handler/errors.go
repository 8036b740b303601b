// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var errMissingHTTPAddress = errors.New("handler: HTTP address is not configured")
