package storage

import "time"

var timeFixture = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
