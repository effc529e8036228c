package game

// IDCounter 目标锁定 ID 发号器
// 溢出时回绕，0 保留为"无锁定"
type IDCounter struct {
	last uint64
}

// Next 返回下一个 ID
func (c *IDCounter) Next() uint64 {
	c.last++
	if c.last == 0 {
		c.last = 1
	}
	return c.last
}
