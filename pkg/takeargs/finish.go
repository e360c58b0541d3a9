// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package takeargs

import "slices"

// Finish ends extraction. In help mode it returns the rendered help text.
// Otherwise it fails if the last take was an unmatched Cmd, or if any token
// was left unconsumed; a clean store returns ("", nil).
//
// A grammar whose subcommand is optional should not end on the Cmd take.
func (a *RawArgs) Finish() (string, error) {
	if a.metadata.HelpMode {
		return a.Help(), nil
	}
	if err := a.checkCommand(); err != nil {
		return "", err
	}
	if v, ok := a.NextRemaining(); ok {
		return "", &UnexpectedArgError{Arg: v, HelpFlagName: a.metadata.HelpFlagName}
	}
	return "", nil
}

func (a *RawArgs) checkCommand() error {
	if len(a.log) == 0 {
		return nil
	}
	if c, ok := a.log[len(a.log)-1].(Cmd); !ok || c.present {
		return nil
	}
	var names []string
	for _, t := range slices.Backward(a.log) {
		c, ok := t.(Cmd)
		if !ok || c.present {
			break
		}
		names = append(names, c.spec.Name)
	}
	slices.Reverse(names)
	if v, ok := a.NextRemaining(); ok {
		return &UndefinedCommandError{Arg: v, Commands: names, HelpFlagName: a.metadata.HelpFlagName}
	}
	return &MissingCommandError{Commands: names, HelpFlagName: a.metadata.HelpFlagName}
}
