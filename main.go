package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/guide-hub/guide-hub/internal/config"
	"github.com/guide-hub/guide-hub/internal/contentcache"
	"github.com/guide-hub/guide-hub/internal/docsource"
	"github.com/guide-hub/guide-hub/internal/logging"
	"github.com/guide-hub/guide-hub/internal/server"
	"github.com/guide-hub/guide-hub/internal/server/routes"
	"github.com/guide-hub/guide-hub/internal/version"
)

// cliOptions 汇总 CLI 标志解析后的结果，便于在测试中注入。
type cliOptions struct {
	configPath  string
	checkOnly   bool
	showVersion bool
}

var (
	stdOut io.Writer = os.Stdout
	stdErr io.Writer = os.Stderr
)

func main() {
	opts, err := parseCLIFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(stdErr, err.Error())
		os.Exit(2)
	}
	os.Exit(run(opts))
}

// run 根据解析到的 CLI 选项执行业务流程，并返回退出码，方便测试。
func run(opts cliOptions) int {
	if opts.showVersion {
		printVersion()
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stdErr, "加载配置失败: %v\n", err)
		return 1
	}

	logger, err := logging.InitLogger(cfg.Global)
	if err != nil {
		fmt.Fprintf(stdErr, "初始化日志失败: %v\n", err)
		return 1
	}

	if opts.checkOnly {
		fields := logging.BaseFields("check_config", opts.configPath)
		fields["guides"] = len(cfg.Guides)
		fields["result"] = "ok"
		logger.WithFields(fields).Info("配置校验通过")
		return 0
	}

	registry, err := server.NewGuideRegistry(cfg)
	if err != nil {
		fmt.Fprintf(stdErr, "构建指南注册表失败: %v\n", err)
		return 1
	}

	// CLI 启动遵循“配置 → GuideRegistry → 文档源 → 内容缓存 → Fiber server”顺序，
	// 保证所有请求共享同一份缓存实例，方便观察 cache/log 指标。
	source, err := docsource.NewFSSource(cfg.Global.DocsPath)
	if err != nil {
		fmt.Fprintf(stdErr, "初始化文档目录失败: %v\n", err)
		return 1
	}

	cache := contentcache.New(source, contentcache.Options{
		TTL:    cfg.Global.CacheTTL.DurationValue(),
		Logger: logger,
	})

	handler, err := server.NewContentHandler(cache, logger)
	if err != nil {
		fmt.Fprintf(stdErr, "构建指南处理器失败: %v\n", err)
		return 1
	}

	fields := logging.BaseFields("startup", opts.configPath)
	fields["guides"] = len(registry.List())
	fields["listen_port"] = cfg.Global.ListenPort
	fields["docs_path"] = cfg.Global.DocsPath
	fields["version"] = version.Full()
	logger.WithFields(fields).Info("配置加载完成")

	if err := startHTTPServer(cfg, registry, handler, logger); err != nil {
		fmt.Fprintf(stdErr, "HTTP 服务启动失败: %v\n", err)
		return 1
	}
	return 0
}

// parseCLIFlags 解析 CLI 参数，并结合环境变量计算最终的配置路径。
func parseCLIFlags(args []string) (cliOptions, error) {
	fs := flag.NewFlagSet("guide-hub", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		configFlag string
		checkOnly  bool
		showVer    bool
	)

	fs.StringVar(&configFlag, "config", "", "配置文件路径（默认 ./config.toml，可被 GUIDE_HUB_CONFIG 覆盖）")
	fs.BoolVar(&checkOnly, "check-config", false, "仅校验配置后退出")
	fs.BoolVar(&showVer, "version", false, "显示版本信息")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, fmt.Errorf("解析参数失败: %w", err)
	}

	path := os.Getenv("GUIDE_HUB_CONFIG")
	if configFlag != "" {
		path = configFlag
	}
	if path == "" {
		path = "config.toml"
	}

	return cliOptions{
		configPath:  path,
		checkOnly:   checkOnly,
		showVersion: showVer,
	}, nil
}

func startHTTPServer(cfg *config.Config, registry *server.GuideRegistry, handler server.GuideHandler, logger *logrus.Logger) error {
	port := cfg.Global.ListenPort
	app, err := server.NewApp(server.AppOptions{
		Logger:     logger,
		Registry:   registry,
		Guides:     handler,
		ListenPort: port,
	})
	if err != nil {
		return err
	}
	routes.RegisterGuideRoutes(app, registry)

	logger.WithFields(logrus.Fields{
		"action": "listen",
		"port":   port,
	}).Info("Fiber 服务启动")

	return app.Listen(fmt.Sprintf(":%d", port))
}
