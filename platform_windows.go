package main

import _ "github.com/mj1618/winlayout/internal/platform/win32"
