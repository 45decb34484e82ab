package snowflake

import "github.com/bwmarrin/snowflake"

// 单实例部署，节点号写死；多实例时从配置注入
var node *snowflake.Node

func init() {
	n, err := snowflake.NewNode(0)
	if err != nil {
		panic(err)
	}
	node = n
}

// GenID 生成全局唯一 ID，用户和消息共用同一个序列
func GenID() int64 {
	return node.Generate().Int64()
}
