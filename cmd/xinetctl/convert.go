package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xinet/pkg/engine/xdb"
	"github.com/omeyang/xinet/pkg/engine/xvector"
	"github.com/omeyang/xinet/pkg/inet/xinet"
	"github.com/omeyang/xinet/pkg/inet/xinetext"
)

// maxLineBytes 单行输入的上限。
const maxLineBytes = 1 << 20

// readRows 按行读取输入并去掉行尾的 \r。内容等于 nullToken 的行成为 NULL。
func readRows(r io.Reader, nullToken string) ([]*string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var rows []*string
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == nullToken {
			rows = append(rows, nil)
			continue
		}
		rows = append(rows, &line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return rows, nil
}

// chunk 是一段已转换的输入。
type chunk struct {
	inputs []*string
	values *xvector.StructVector
}

// convertChunks 把 rows 按 chunkRows 切块，最多 workers 个块并发转换为 inet。
//
// 任一块失败时返回序号最小的失败块的错误；序号大于已知失败块的块不再启动。
// 成功时结果按输入顺序排列。
func convertChunks(ctx context.Context, db *xdb.Database, rows []*string, chunkRows, workers int) ([]chunk, error) {
	n := (len(rows) + chunkRows - 1) / chunkRows
	chunks := make([]chunk, n)
	errs := make([]error, n)

	var firstFailed atomic.Int64
	firstFailed.Store(int64(n))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range n {
		g.Go(func() error {
			if int64(i) > firstFailed.Load() {
				return nil
			}
			if err := gctx.Err(); err != nil {
				return err
			}
			inputs := rows[i*chunkRows : min((i+1)*chunkRows, len(rows))]
			res, err := db.CastTo(gctx, xvector.NewVarcharNullable(inputs), xinetext.TypeName, len(inputs))
			if err != nil {
				errs[i] = err
				lowerTo(&firstFailed, int64(i))
				return nil
			}
			values, ok := res.(*xvector.StructVector)
			if !ok {
				return fmt.Errorf("chunk %d: unexpected result vector %T", i, res)
			}
			chunks[i] = chunk{inputs: inputs, values: values}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return chunks, nil
}

// lowerTo 把 v 原子地降到 x（若 x 更小）。
func lowerTo(v *atomic.Int64, x int64) {
	for {
		cur := v.Load()
		if x >= cur || v.CompareAndSwap(cur, x) {
			return
		}
	}
}

// rowValue 返回块内第 i 行的 inet 值，NULL 行返回 false。
func (c chunk) rowValue(i int) (xinet.Value, bool) {
	if !c.values.RowIsValid(i) {
		return xinet.Value{}, false
	}
	address := c.values.Child(0).(*xvector.HugeintVector)
	mask := c.values.Child(1).(*xvector.USmallintVector)
	return xinet.Value{Address: address.Values[i], Mask: int32(mask.Values[i])}, true
}

// jsonRow 是 json 输出的一行，NULL 行所有字段为 null。
type jsonRow struct {
	Input   *string `json:"input"`
	IP      *string `json:"ip"`
	Address *string `json:"address"`
	Mask    *int32  `json:"mask"`
}

// writeChunks 按输入顺序输出。text 格式每行为 "输入<TAB>IP/掩码<TAB>address<TAB>mask"，
// NULL 行输出 nullToken；json 格式每行一个对象。
func writeChunks(w io.Writer, chunks []chunk, format, nullToken string) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, c := range chunks {
		for i, in := range c.inputs {
			v, ok := c.rowValue(i)
			var err error
			switch {
			case format == "json" && !ok:
				err = enc.Encode(jsonRow{})
			case format == "json":
				ip := v.Addr().String()
				address := v.Address.String()
				mask := v.Mask
				err = enc.Encode(jsonRow{Input: in, IP: &ip, Address: &address, Mask: &mask})
			case !ok:
				_, err = fmt.Fprintln(bw, nullToken)
			default:
				_, err = fmt.Fprintf(bw, "%s\t%s/%d\t%s\t%d\n", *in, v.Addr(), v.Mask, v.Address, v.Mask)
			}
			if err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// formatValue 返回 parse 命令的单行输出。
func formatValue(input string, v xinet.Value) string {
	octets := v.Octets()
	line := fmt.Sprintf("%s\tip=%s\taddress=%s\tmask=%d\toctets=%d.%d.%d.%d",
		input, v.Addr(), v.Address, v.Mask, octets[0], octets[1], octets[2], octets[3])
	if r, ok := v.Range(); ok {
		line += "\trange=" + r.String()
	}
	return line
}
