// Package scaffold turns a validated project configuration into files on
// disk. Layout decides which directories and files a project gets, Render
// fills them from the embedded templates under templates/, and Write
// creates them in an empty destination.
//
// The generated tools/ scripts are the contract between init and every
// later command: the dispatcher looks them up by the Script* paths declared
// here.
package scaffold
