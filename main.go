package main

import (
	"flag"
	"fmt"
	logger "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"runtime"
	"syscall"
	"time"
)

const CurrentVersion = "v1.0.0"

var (
	configFileFlag = flag.String(
		"config",
		"",
		"use config file (yaml format)",
	)
	serverFlag = flag.String(
		"server",
		"",
		"Set DNS server ip, eg: 8.8.8.8.",
	)
	portFlag = flag.Int(
		"port",
		DnsPort,
		"Set DNS server port.",
	)
	timeoutMsFlag = flag.Int(
		"timeout-ms",
		1000,
		"Per-attempt wait for a response, in milliseconds.",
	)
	attemptsFlag = flag.Int(
		"attempts",
		DefaultMaxAttempts,
		"Maximum send/receive/parse attempts per lookup.",
	)
	ntpFlag = flag.Bool(
		"ntp",
		false,
		"Query the current time instead of resolving names.",
	)
	ntpServerFlag = flag.String(
		"ntp-server",
		"",
		"Set NTP server ip.",
	)
	utcOffsetFlag = flag.Float64(
		"utc-offset",
		0,
		"Hours to offset NTP time from UTC, may be fractional.",
	)
	logLevelFlag = flag.String(
		"loglevel",
		"info",
		"Set log level.",
	)
	versionFlag = flag.Bool(
		"version",
		false,
		"Print version info.",
	)
)

var log = &logger.Logger{
	Out: os.Stdout,
	Formatter: &logger.TextFormatter{
		CallerPrettyfier: func(caller *runtime.Frame) (function string, file string) {
			function = ""
			_, filename_ := path.Split(caller.File)
			file = fmt.Sprintf("%s:%d", filename_, caller.Line)
			return
		},
		TimestampFormat: "2006-01-02T15:04:05",
	},
	Level:        logger.DebugLevel,
	ReportCaller: true,
}

func printVersion() {
	fmt.Println(CurrentVersion)
}

func fillExecConfigFromFlags() {
	ExecConfig.DnsConfig.Server = *serverFlag
	ExecConfig.DnsConfig.Port = *portFlag
	ExecConfig.DnsConfig.TimeoutMs = *timeoutMsFlag
	ExecConfig.DnsConfig.MaxAttempts = *attemptsFlag

	ExecConfig.NtpConfig.Server = *ntpServerFlag
	ExecConfig.NtpConfig.UTCOffset = *utcOffsetFlag

	ExecConfig.LogLevel = *logLevelFlag
}

func main() {

	// Exit on some signals.
	termSig_ := make(chan os.Signal, 1)
	signal.Notify(termSig_, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig_ := <-termSig_
		fmt.Printf("*** Terminating from signal [%+v] ***\n", sig_)
		os.Exit(0)
	}()

	flag.Usage = func() {
		_, execPath_ := filepath.Split(os.Args[0])
		_, _ = fmt.Fprint(os.Stderr, "DNS lookup over UDP with hand-built packets.\n\n")
		_, _ = fmt.Fprint(os.Stderr, "Version: "+CurrentVersion+".\n\n")
		_, _ = fmt.Fprintf(os.Stderr,
			"Usage:\n\n  %s [options] hostname [hostname ...]\n\nOptions:\n\n", execPath_)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *configFileFlag != "" && PathExists(*configFileFlag) {
		ReadConfigFromFile(*configFileFlag)
	} else {
		fillExecConfigFromFlags()
	}

	if *versionFlag {
		printVersion()
		return
	}

	// Set the loglevel
	logLevel_, err := logger.ParseLevel(ExecConfig.LogLevel)
	if err != nil {
		log.Warnf("invalid log level: %v", err)
	}
	log.SetLevel(logLevel_)

	if *ntpFlag {
		runNtpQuery()
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	runLookups(flag.Args())
}

func runLookups(hostnames []string) {
	if ExecConfig.DnsConfig.Server != "" && !ServerAddrUsable(ExecConfig.DnsConfig.Server) {
		log.Errorf("server config invalid, should be like 8.8.8.8: %s", ExecConfig.DnsConfig.Server)
		os.Exit(1)
	}
	client_ := NewDnsClient(ExecConfig.DnsConfig.Server)
	client_.port = ExecConfig.DnsConfig.Port
	client_.attemptTimeout = time.Duration(ExecConfig.DnsConfig.TimeoutMs) * time.Millisecond
	if ExecConfig.DnsConfig.MaxAttempts > 0 {
		client_.maxAttempts = ExecConfig.DnsConfig.MaxAttempts
	}
	if ExecConfig.DnsConfig.PollIntervalMs > 0 {
		client_.pollInterval = time.Duration(ExecConfig.DnsConfig.PollIntervalMs) * time.Millisecond
	}

	failed_ := false
	for _, hostname_ := range hostnames {
		addr_, err := client_.Resolve(hostname_)
		if err != nil {
			log.Errorf("resolve %s: %v", hostname_, err)
			failed_ = true
			continue
		}
		fmt.Printf("%s\t%s\n", hostname_, addr_)
	}
	if failed_ {
		os.Exit(1)
	}
}

func runNtpQuery() {
	client_ := NewNtpClient(ExecConfig.NtpConfig.Server, ExecConfig.NtpConfig.UTCOffset)
	t_, err := client_.GetTime()
	if err != nil {
		log.Errorf("ntp query: %v", err)
		os.Exit(1)
	}
	fmt.Println(t_.Format(time.RFC3339))
}
