package schedbridge

import (
	"github.com/sirupsen/logrus"
)

var log = logrus.New()
