// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/thortx/wire"
)

// field layouts of each message
//
// numbers are fixed by the chain's .proto files; adding a field here
// and a matching value in the Pack method is all that is needed
var (
	coinLayout = wire.NewLayout(
		wire.Field{Number: 1, Type: wire.LengthDelimited, Name: "denom"},
		wire.Field{Number: 2, Type: wire.LengthDelimited, Name: "amount"},
	)

	msgSendLayout = wire.NewLayout(
		wire.Field{Number: 1, Type: wire.LengthDelimited, Name: "from_address"},
		wire.Field{Number: 2, Type: wire.LengthDelimited, Name: "to_address"},
		wire.Field{Number: 3, Type: wire.LengthDelimited, Name: "amount"},
	)

	anyLayout = wire.NewLayout(
		wire.Field{Number: 1, Type: wire.LengthDelimited, Name: "type_url"},
		wire.Field{Number: 2, Type: wire.LengthDelimited, Name: "value"},
	)

	txBodyLayout = wire.NewLayout(
		wire.Field{Number: 1, Type: wire.LengthDelimited, Name: "messages"},
		wire.Field{Number: 2, Type: wire.LengthDelimited, Name: "memo"},
		wire.Field{Number: 3, Type: wire.Varint, Name: "timeout_height"},
	)

	pubKeyLayout = wire.NewLayout(
		wire.Field{Number: 1, Type: wire.LengthDelimited, Name: "key"},
	)

	modeInfoLayout = wire.NewLayout(
		wire.Field{Number: 1, Type: wire.LengthDelimited, Name: "single"},
	)

	modeInfoSingleLayout = wire.NewLayout(
		wire.Field{Number: 1, Type: wire.Varint, Name: "mode"},
	)

	signerInfoLayout = wire.NewLayout(
		wire.Field{Number: 1, Type: wire.LengthDelimited, Name: "public_key"},
		wire.Field{Number: 2, Type: wire.LengthDelimited, Name: "mode_info"},
		wire.Field{Number: 3, Type: wire.Varint, Name: "sequence"},
	)

	feeLayout = wire.NewLayout(
		wire.Field{Number: 1, Type: wire.LengthDelimited, Name: "amount"},
		wire.Field{Number: 2, Type: wire.Varint, Name: "gas_limit"},
		wire.Field{Number: 3, Type: wire.LengthDelimited, Name: "payer"},
		wire.Field{Number: 4, Type: wire.LengthDelimited, Name: "granter"},
	)

	authInfoLayout = wire.NewLayout(
		wire.Field{Number: 1, Type: wire.LengthDelimited, Name: "signer_infos"},
		wire.Field{Number: 2, Type: wire.LengthDelimited, Name: "fee"},
	)

	txRawLayout = wire.NewLayout(
		wire.Field{Number: 1, Type: wire.LengthDelimited, Name: "body_bytes"},
		wire.Field{Number: 2, Type: wire.LengthDelimited, Name: "auth_info_bytes"},
		wire.Field{Number: 3, Type: wire.LengthDelimited, Name: "signatures"},
	)

	signDocLayout = wire.NewLayout(
		wire.Field{Number: 1, Type: wire.LengthDelimited, Name: "body_bytes"},
		wire.Field{Number: 2, Type: wire.LengthDelimited, Name: "auth_info_bytes"},
		wire.Field{Number: 3, Type: wire.LengthDelimited, Name: "chain_id"},
		wire.Field{Number: 4, Type: wire.Varint, Name: "account_number"},
	)
)
