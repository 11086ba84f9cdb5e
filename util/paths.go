// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
	"strings"
)

// EnsureAbsolute - ensure the path is absolute
//
// a leading "~/" is replaced by the home directory, any other relative
// path is joined to the directory
func EnsureAbsolute(directory string, filePath string) string {
	if strings.HasPrefix(filePath, "~/") {
		if home, err := os.UserHomeDir(); nil == err {
			filePath = filepath.Join(home, filePath[2:])
		}
	}
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
