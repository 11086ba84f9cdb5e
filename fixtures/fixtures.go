// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// addresses used throughout the tests
const (
	Prefix       = "thor1"
	Address      = "thor1a3eb9d2cbea51896c33209f2bb5ff979a44201a2"
	OtherAddress = "thor100112233445566778899aabbccddeeff00112233"
	WrongPrefix  = "cosm1a3eb9d2cbea51896c33209f2bb5ff979a44201a2"
)

var (
	Identifier      = []byte{0xa3, 0xeb, 0x9d, 0x2c, 0xbe, 0xa5, 0x18, 0x96, 0xc3, 0x32, 0x09, 0xf2, 0xbb, 0x5f, 0xf9, 0x79, 0xa4, 0x42, 0x01, 0xa2}
	OtherIdentifier = []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x00, 0x11, 0x22, 0x33}
)

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
