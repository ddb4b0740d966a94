package catalog

// nameIndex 单类实体的内存索引
// 设计说明:
// 1. byKey按归一化名称定位,byID按稳定标识定位
// 2. order保留插入顺序,List返回的快照按此顺序排列
// 3. 单线程访问(目录操作由调用方串行化),不加锁
type nameIndex[T any] struct {
	byKey map[string]*T
	byID  map[uint]*T
	order []*T
}

func newNameIndex[T any]() *nameIndex[T] {
	return &nameIndex[T]{
		byKey: make(map[string]*T),
		byID:  make(map[uint]*T),
	}
}

func (idx *nameIndex[T]) get(key string) (*T, bool) {
	v, ok := idx.byKey[key]
	return v, ok
}

func (idx *nameIndex[T]) getByID(id uint) (*T, bool) {
	v, ok := idx.byID[id]
	return v, ok
}

func (idx *nameIndex[T]) has(key string) bool {
	_, ok := idx.byKey[key]
	return ok
}

// insert 插入新实体;重名检查由调用方先行完成
// 说明:此时ID通常尚未由数据库回填,持久化成功后调用rebindID补登
func (idx *nameIndex[T]) insert(key string, v *T) {
	idx.byKey[key] = v
	idx.order = append(idx.order, v)
}

// rebindID 按数据库回填的ID登记实体
func (idx *nameIndex[T]) rebindID(id uint, v *T) {
	idx.byID[id] = v
}

// rekey 改名后迁移索引键;新键冲突检查由调用方先行完成
func (idx *nameIndex[T]) rekey(oldKey, newKey string, v *T) {
	delete(idx.byKey, oldKey)
	idx.byKey[newKey] = v
}

// remove 按键移除;不存在时无副作用
func (idx *nameIndex[T]) remove(key string, id uint) {
	v, ok := idx.byKey[key]
	if !ok {
		return
	}
	delete(idx.byKey, key)
	delete(idx.byID, id)
	for i, e := range idx.order {
		if e == v {
			idx.order = append(idx.order[:i], idx.order[i+1:]...)
			break
		}
	}
}

// list 返回按插入顺序排列的快照
func (idx *nameIndex[T]) list() []*T {
	out := make([]*T, len(idx.order))
	copy(out, idx.order)
	return out
}

func (idx *nameIndex[T]) count() int {
	return len(idx.order)
}
