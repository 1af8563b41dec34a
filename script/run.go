// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordtree/fault"
)

// Step - one operation of a scenario
type Step struct {
	Op    string `gluamapper:"op"`
	Key   string `gluamapper:"key"`
	Value string `gluamapper:"value"`
}

// Run - apply steps in order, returns the number of steps completed
func Run(op Operator, steps []Step, log *logger.L) (int, error) {

	for i, s := range steps {
		if err := apply(op, s, log); nil != err {
			log.Errorf("step[%d]: %s %q: error: %s", i, s.Op, s.Key, err)
			return i, err
		}
	}
	log.Infof("completed: %d steps  size: %d", len(steps), op.Size())
	return len(steps), nil
}

func apply(op Operator, s Step, log *logger.L) error {
	if "clear" == s.Op {
		op.Clear()
		log.Info("clear")
		return nil
	}

	if "" == s.Key {
		return fault.ErrMissingKey
	}

	switch s.Op {
	case "insert":
		inserted := op.Insert(s.Key, s.Value)
		log.Debugf("insert: %q → %q  inserted: %t", s.Key, s.Value, inserted)

	case "assign":
		inserted := op.Assign(s.Key, s.Value)
		log.Debugf("assign: %q → %q  inserted: %t", s.Key, s.Value, inserted)

	case "set":
		op.Store(s.Key, s.Value)
		log.Debugf("set: %q → %q", s.Key, s.Value)

	case "erase":
		erased := op.Erase(s.Key)
		log.Debugf("erase: %q  erased: %t", s.Key, erased)

	case "find":
		value, found := op.Find(s.Key)
		if found {
			log.Infof("find: %q → %q", s.Key, value)
		} else {
			log.Infof("find: %q not found", s.Key)
		}

	case "at":
		value, err := op.At(s.Key)
		if nil != err {
			return err
		}
		log.Infof("at: %q → %q", s.Key, value)

	default:
		return fault.ErrUnknownOperation
	}
	return nil
}
