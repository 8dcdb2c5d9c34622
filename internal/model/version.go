package model

// Version is the released version of gotodir.
const Version = "v0.4.0"
