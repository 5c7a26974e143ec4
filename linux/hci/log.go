package hci

import "github.com/rigado/aclmgr"

// Logger is the package logger, taken from aclmgr.GetLogger when the
// package is initialized; a later aclmgr.SetLogger does not change it.
var Logger = aclmgr.GetLogger()
