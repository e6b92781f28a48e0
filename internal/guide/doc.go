// Package guide 聚合各生态最佳实践指南的元数据，并提供统一的注册入口。
//
// 指南作者需要：
//  1. 在 internal/guide/<guide-key>/ 目录下声明指南元数据与兜底文本；
//  2. 通过本包暴露的 Register 函数在 init() 中注册；
//  3. 保证兜底文本是独立可读的最小版指南，不依赖文档源可用。
//
// 该包同时负责向配置层与诊断端提供指南发现能力。
package guide
