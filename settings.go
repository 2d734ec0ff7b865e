package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// setting keys
const (
	sDebounce     = "debounceDelay"
	sKeyRepeat    = "keyRepeatDelay"
	sDisplayCycle = "displayCycle"
	sAlarmPoll    = "alarmPollRate"
	sAlarmToggle  = "alarmToggle"
	sMenuFlash    = "menuFlash"
	sAlarmRepeat  = "alarmRepeat"
	sBootHold     = "bootHold"
	sBootTest     = "bootTest"
	sSecondPeriod = "secondPeriod"
	sMilliPeriod  = "milliPeriod"
	sPollSleep    = "pollSleep"
	sKeyHold      = "keyHold"
	sDisplay      = "display"
	sInputs       = "inputs"
	sSound        = "sound"
	sPinPB1       = "pinPB1"
	sPinPB2       = "pinPB2"
	sPinSwitches  = "pinSwitches"
	sPinLEDs      = "pinLEDs"
	sPinPiezo     = "pinPiezo"
	sI2CBus       = "i2c_bus"
	sI2CDev       = "i2c_device"
	sI2CSim       = "i2c_simulated"
	sBrightness   = "brightness"
	sPanel        = "httpPanel"
	sHTTPAddr     = "httpAddr"
	sHTTPUser     = "httpUser"
	sHTTPSecret   = "httpSecret"
	sLogFile      = "logFile"
	sDebug        = "debug_dump"
)

// keep settings generic, type-convert on the fly
type configSettings struct {
	settings map[string]interface{}
}

func isSimulated() bool {
	return runtime.GOARCH != "arm"
}

func defaultSettings() configSettings {
	s := make(map[string]interface{})

	// setting the type here makes the conversion "automatic" later
	s[sDebounce], _ = time.ParseDuration("25ms")
	s[sKeyRepeat], _ = time.ParseDuration("25ms")
	s[sDisplayCycle], _ = time.ParseDuration("3s")
	s[sAlarmPoll], _ = time.ParseDuration("50ms")
	s[sAlarmToggle], _ = time.ParseDuration("150ms")
	s[sMenuFlash], _ = time.ParseDuration("100ms")
	s[sAlarmRepeat], _ = time.ParseDuration("100ms")
	s[sBootHold], _ = time.ParseDuration("250ms")
	s[sBootTest] = true
	s[sSecondPeriod], _ = time.ParseDuration("1s")
	s[sMilliPeriod], _ = time.ParseDuration("1ms")
	s[sPollSleep], _ = time.ParseDuration("200us")
	s[sKeyHold], _ = time.ParseDuration("200ms")
	s[sPinPB1] = 20
	s[sPinPB2] = 21
	s[sPinSwitches] = "5,6,13,19,26,16,12,25"
	s[sPinLEDs] = "4,17,27,22,10,9,11,8"
	s[sPinPiezo] = 18
	s[sI2CBus] = 1
	s[sI2CDev] = byte(0x70)
	s[sBrightness] = byte(15)
	s[sPanel] = false
	s[sHTTPAddr] = ":8080"
	s[sHTTPUser] = "rtcalarm"
	s[sHTTPSecret] = ""
	s[sLogFile] = "/var/log/rtcalarm.log"
	s[sDebug] = false

	cs := configSettings{settings: s}
	cs.simulate(isSimulated())
	return cs
}

// pick the hardware backends for a pi or for a desktop
func (s configSettings) simulate(on bool) {
	s.settings[sI2CSim] = on
	if on {
		s.settings[sDisplay] = "terminal"
		s.settings[sInputs] = "keyboard"
		s.settings[sSound] = "audio"
	} else {
		s.settings[sDisplay] = "backpack"
		s.settings[sInputs] = "rpio"
		s.settings[sSound] = "piezo"
	}
}

func (s configSettings) settingsFromJSON(data []byte) error {
	tmp := defaultSettings()
	for k, initVal := range tmp.settings {
		// ignore missing fields
		_, dataType, _, err := jsonparser.Get(data, k)
		if err != nil || dataType == jsonparser.NotExist {
			continue
		}

		switch initVal.(type) {
		case uint8:
			var val int64
			val, err = jsonparser.GetInt(data, k)
			if err != nil {
				// hex strings are easier to read for addresses
				var valString string
				valString, err = jsonparser.GetString(data, k)
				if err == nil {
					val, err = strconv.ParseInt(valString, 0, 64)
				}
			}
			if err == nil {
				if val < 0 || val > 255 {
					err = fmt.Errorf("%s out of range: %d", k, val)
				} else {
					s.settings[k] = byte(val)
				}
			}
		case int:
			var val int64
			val, err = jsonparser.GetInt(data, k)
			if err == nil {
				s.settings[k] = int(val)
			}
		case bool:
			var bVal bool
			bVal, err = jsonparser.GetBoolean(data, k)
			if err != nil {
				// try "true" and "false"
				str, _ := jsonparser.GetString(data, k)
				switch strings.ToLower(str) {
				case "true":
					bVal, err = true, nil
				case "false":
					bVal, err = false, nil
				}
			}
			if err == nil {
				s.settings[k] = bVal
			}
		case time.Duration:
			var dur string
			dur, err = jsonparser.GetString(data, k)
			if err == nil {
				var dur2 time.Duration
				dur2, err = time.ParseDuration(dur)
				if err == nil {
					s.settings[k] = dur2
				}
			}
		case string:
			s.settings[k], err = jsonparser.GetString(data, k)
		default:
			err = fmt.Errorf("bad type: %T", initVal)
		}
		if err != nil {
			return errors.Wrapf(err, "setting %s", k)
		}
	}
	return nil
}

// an empty path means "defaults only"
func initSettings(path string, simulated bool) (configSettings, error) {
	log.Println("initSettings")

	s := defaultSettings()
	if simulated {
		s.simulate(true)
	}
	if path == "" {
		return s, nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return s, errors.Wrapf(err, "could not load conf file '%s'", path)
	}

	log.Printf("reading configuration from '%s'", path)

	if err := s.settingsFromJSON(data); err != nil {
		return s, errors.Wrapf(err, "bad conf file '%s'", path)
	}

	return s, nil
}

func (s configSettings) GetString(key string) string {
	switch v := s.settings[key].(type) {
	case string:
		return v
	default:
		return ""
	}
}

func (s configSettings) GetBool(key string) bool {
	switch v := s.settings[key].(type) {
	case bool:
		return v
	default:
		return false
	}
}

func (s configSettings) GetDuration(key string) time.Duration {
	switch v := s.settings[key].(type) {
	case time.Duration:
		return v
	default:
		return -1
	}
}

func (s configSettings) GetByte(key string) byte {
	switch v := s.settings[key].(type) {
	case byte:
		return v
	case int: // cast to byte
		return byte(v)
	default:
		return 0
	}
}

func (s configSettings) GetInt(key string) int {
	switch v := s.settings[key].(type) {
	case int:
		return v
	case byte:
		return int(v)
	default:
		return 0
	}
}

// comma separated pin numbers
func (s configSettings) GetIntList(key string) ([]int, error) {
	ret := []int{}
	for _, part := range strings.Split(s.GetString(key), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrapf(err, "setting %s", key)
		}
		ret = append(ret, v)
	}
	return ret, nil
}

func (s configSettings) Dump() {
	keys := make([]string, 0, len(s.settings))
	for k := range s.settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k == sHTTPSecret {
			log.Printf("%s : %T: <hidden>", k, s.settings[k])
			continue
		}
		log.Printf("%s : %T: %v", k, s.settings[k], s.settings[k])
	}
}
