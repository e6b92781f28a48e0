package logging

import "github.com/sirupsen/logrus"

// BaseFields 构建 action + 配置路径等基础字段，便于不同入口复用。
func BaseFields(action, configPath string) logrus.Fields {
	return logrus.Fields{
		"action":     action,
		"configPath": configPath,
	}
}

// RequestFields 提供指南/模块/缓存状态字段，供请求日志复用。
func RequestFields(guideName, moduleKey, cacheStatus string) logrus.Fields {
	return logrus.Fields{
		"guide":        guideName,
		"module_key":   moduleKey,
		"cache_status": cacheStatus,
	}
}
