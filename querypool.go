package vk

import "unsafe"

// QueryPoolCreateInfo configures query pool creation.
type QueryPoolCreateInfo struct {
	Next               unsafe.Pointer
	Flags              QueryPoolCreateFlags
	QueryType          QueryType
	QueryCount         uint32
	PipelineStatistics QueryPipelineStatisticFlags
}

type vkQueryPoolCreateInfo struct {
	sType              StructureType
	pNext              unsafe.Pointer
	flags              QueryPoolCreateFlags
	queryType          QueryType
	queryCount         uint32
	pipelineStatistics QueryPipelineStatisticFlags
}

// QueryPool holds a fixed number of queries of a single type.
type QueryPool struct {
	Device      *Device
	VKQueryPool QueryPoolHandle
	QueryCount  uint32

	destroyed bool
}

func (d *Device) CreateQueryPool(info *QueryPoolCreateInfo) (*QueryPool, error) {
	raw := vkQueryPoolCreateInfo{
		sType:              StructureTypeQueryPoolCreateInfo,
		pNext:              info.Next,
		flags:              info.Flags,
		queryType:          info.QueryType,
		queryCount:         info.QueryCount,
		pipelineStatistics: info.PipelineStatistics,
	}

	var pool QueryPoolHandle
	if err := Error(d.cmds.createQueryPool(d.VKDevice, &raw, d.allocator.handle(), &pool)); err != nil {
		return nil, err
	}
	return &QueryPool{Device: d, VKQueryPool: pool, QueryCount: info.QueryCount}, nil
}

// Results reads back 64-bit results for count queries starting at first.
// NotReady surfaces as a result error when the flags do not include a wait.
func (q *QueryPool) Results(first, count uint32, flags QueryResultFlags) ([]uint64, error) {
	if count == 0 {
		return nil, nil
	}
	out := make([]uint64, count)
	res := q.Device.cmds.getQueryPoolResults(
		q.Device.VKDevice, q.VKQueryPool, first, count,
		uintptr(len(out)*8), unsafe.Pointer(&out[0]), 8, flags|QueryResult64Bit)
	if err := Error(res); err != nil {
		return nil, err
	}
	return out, nil
}

// Destroy destroys the pool. Destroying twice is a no-op.
func (q *QueryPool) Destroy() {
	if q.destroyed || q.VKQueryPool == 0 {
		return
	}
	q.destroyed = true
	q.Device.cmds.destroyQueryPool(q.Device.VKDevice, q.VKQueryPool, q.Device.allocator.handle())
	q.VKQueryPool = 0
}
