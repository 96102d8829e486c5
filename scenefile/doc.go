// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scenefile reads YAML scene descriptions.
//
// A scene lists its viewport, assets and shapes:
//
//	width: 320
//	height: 200
//	background: "#ffffff"
//	root: 00000000-0000-0000-0000-000000000001
//	images:
//	  - id: 7d444840-9dc0-11d1-b245-5ffdce74fad2
//	    path: logo.png
//	shapes:
//	  - id: 00000000-0000-0000-0000-000000000001
//	    kind: frame
//	    rect: [0, 0, 320, 200]
//	    children: [00000000-0000-0000-0000-000000000002]
//	  - id: 00000000-0000-0000-0000-000000000002
//	    kind: rect
//	    rect: [20, 20, 100, 60]
//	    radius: 8
//	    fills:
//	      - color: "#ff0000"
//	    shadows:
//	      - color: "#00000080"
//	        offset: [4, 4]
//	        blur: 6
//
// Colors are "#rgb", "#rrggbb" or "#rrggbbaa". Paths use absolute
// M, L, Q, C and Z commands, as in "M 0 0 L 10 0 L 10 10 Z".
package scenefile
