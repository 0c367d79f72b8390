// Package prompt asks for init options on a terminal with numbered menus.
package prompt
