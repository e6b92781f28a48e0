package config

import (
	_ "github.com/guide-hub/guide-hub/internal/guide/apk"
	_ "github.com/guide-hub/guide-hub/internal/guide/composer"
	_ "github.com/guide-hub/guide-hub/internal/guide/debian"
	_ "github.com/guide-hub/guide-hub/internal/guide/docker"
	_ "github.com/guide-hub/guide-hub/internal/guide/golang"
	_ "github.com/guide-hub/guide-hub/internal/guide/npm"
	_ "github.com/guide-hub/guide-hub/internal/guide/pypi"
)
