package usecase

import "time"

var nowFunc = time.Now
