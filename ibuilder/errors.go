// SPDX-License-Identifier: MIT
// Package ibuilder: no package-specific sentinels beyond mataerr's shared
// set (mataerr.ErrBadInput covers every validation failure here).
package ibuilder
