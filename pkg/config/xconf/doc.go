// Package xconf 基于 koanf 加载 YAML/JSON 配置。
//
// 加载顺序：文件（或字节数据）→ 覆盖项（[WithOverride]）。
// 覆盖项通常来自命令行参数，在每次 [Config.Reload] 后重新应用，
// 因此显式传入的参数始终优先于文件内容。
//
// # 反序列化
//
// [Config.Unmarshal] 使用 mapstructure，支持 time.Duration 字符串（"5s"）
// 以及实现了 encoding.TextUnmarshaler 的字段类型。
// 开启 [WithStrict] 后，配置中出现目标结构体没有的键会返回 [ErrUnmarshalFailed]，
// 用于尽早发现拼写错误。
//
// # 并发
//
// 所有方法并发安全。Reload 解析成功后整体替换底层 koanf 实例；
// Client() 返回的指针在 Reload 后仍可用，但指向旧配置。
package xconf
