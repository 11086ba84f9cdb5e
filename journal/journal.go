// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package journal - local history of built and submitted transactions
//
// records are JSON values in a LevelDB keyed by transaction hash, so a
// transaction rebuilt with identical bytes replaces its earlier record
package journal

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/thortx/fault"
	"github.com/bitmark-inc/thortx/transactionrecord"
)

const currentVersion = 1

// key prefixes
var (
	versionKey        = []byte{'V'}
	transactionPrefix = []byte{'T'}
)

// Record - one transaction as built and, optionally, as answered by a node
type Record struct {
	Hash      string                   `json:"hash"`
	Timestamp time.Time                `json:"timestamp"`
	Chain     string                   `json:"chain"`
	From      string                   `json:"from"`
	To        string                   `json:"to"`
	Amount    string                   `json:"amount,omitempty"`
	Memo      string                   `json:"memo"`
	Sequence  uint64                   `json:"sequence"`
	GasLimit  uint64                   `json:"gasLimit"`
	Tx        transactionrecord.Packed `json:"tx"`

	Broadcast bool   `json:"broadcast"`
	Code      uint32 `json:"code"`
	Log       string `json:"log,omitempty"`
}

// Journal - an open history database
type Journal struct {
	sync.Mutex

	log *logger.L
	db  *leveldb.DB
}

// Open - open or create the journal in a directory
func Open(directory string) (*Journal, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
	}

	db, err := leveldb.OpenFile(directory, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, directory)
}

// OpenStorage - open on an explicit storage, e.g. memory for tests
func OpenStorage(s ldb_storage.Storage) (*Journal, error) {
	db, err := leveldb.Open(s, nil)
	if nil != err {
		return nil, err
	}
	return setup(db, "storage")
}

func setup(db *leveldb.DB, name string) (*Journal, error) {
	log := logger.New("journal")

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		version := make([]byte, 4)
		binary.BigEndian.PutUint32(version, currentVersion)
		err = db.Put(versionKey, version, nil)
		if nil != err {
			db.Close()
			return nil, err
		}
		log.Infof("created journal: %s", name)

	} else if nil != err {
		db.Close()
		return nil, err

	} else if 4 != len(versionValue) || currentVersion != binary.BigEndian.Uint32(versionValue) {
		db.Close()
		return nil, fmt.Errorf("incompatible journal version: %x", versionValue)
	}

	log.Debugf("opened journal: %s", name)

	return &Journal{
		log: log,
		db:  db,
	}, nil
}

// Close - close the database
func (journal *Journal) Close() error {
	journal.Lock()
	defer journal.Unlock()

	if nil == journal.db {
		return nil
	}
	err := journal.db.Close()
	journal.db = nil
	return err
}

// Put - store a record, replacing any with the same hash
func (journal *Journal) Put(record *Record) error {
	data, err := json.Marshal(record)
	if nil != err {
		return err
	}

	journal.Lock()
	defer journal.Unlock()

	err = journal.db.Put(transactionKey(record.Hash), data, nil)
	if nil != err {
		journal.log.Errorf("put: %s  error: %s", record.Hash, err)
		return err
	}
	journal.log.Debugf("put: %s  broadcast: %t  code: %d", record.Hash, record.Broadcast, record.Code)
	return nil
}

// Get - fetch a record by transaction hash
func (journal *Journal) Get(hash string) (*Record, error) {
	journal.Lock()
	defer journal.Unlock()

	data, err := journal.db.Get(transactionKey(hash), nil)
	if leveldb.ErrNotFound == err {
		return nil, fault.ErrNotFoundTransaction
	} else if nil != err {
		return nil, err
	}

	var record Record
	err = json.Unmarshal(data, &record)
	if nil != err {
		return nil, err
	}
	return &record, nil
}

// List - all records, oldest first
func (journal *Journal) List() ([]*Record, error) {
	journal.Lock()
	defer journal.Unlock()

	records := make([]*Record, 0, 16)

	iter := journal.db.NewIterator(ldb_util.BytesPrefix(transactionPrefix), nil)
	for iter.Next() {
		var record Record
		err := json.Unmarshal(iter.Value(), &record)
		if nil != err {
			iter.Release()
			return nil, fmt.Errorf("record: %q  error: %s", iter.Key(), err)
		}
		records = append(records, &record)
	}
	iter.Release()
	err := iter.Error()
	if nil != err {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
	return records, nil
}

func transactionKey(hash string) []byte {
	return append(append([]byte{}, transactionPrefix...), hash...)
}
