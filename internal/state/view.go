// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

// View selects the screen that is rendered. The zero value is [ViewHome].
type View int

const (
	ViewHome View = iota
	ViewAddLaptop
	ViewDistributeForm
	ViewEditLaptop
	ViewReturnForm
	ViewListAll
	ViewListDistributed
	ViewLogin
	ViewRegister
)

var viewNames = map[View]string{
	ViewHome:            "home",
	ViewAddLaptop:       "addLaptop",
	ViewDistributeForm:  "distributeForm",
	ViewEditLaptop:      "editLaptop",
	ViewReturnForm:      "returnForm",
	ViewListAll:         "listAll",
	ViewListDistributed: "listDistributed",
	ViewLogin:           "login",
	ViewRegister:        "register",
}

// Normalize maps unknown values to [ViewHome].
func (v View) Normalize() View {
	if _, ok := viewNames[v]; !ok {
		return ViewHome
	}
	return v
}

// String implements [fmt.Stringer].
func (v View) String() string {
	return viewNames[v.Normalize()]
}

// Public reports whether the view may be shown without a session.
func (v View) Public() bool {
	v = v.Normalize()
	return v == ViewLogin || v == ViewRegister
}

